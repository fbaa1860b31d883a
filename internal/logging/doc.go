// Package logging builds the zap logger shared by the sleigh components.
package logging
