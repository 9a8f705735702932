/*
Package spriteterm displays Pixel Studio sprite files in the terminal
using 24-bit color.
*/
package spriteterm

import "log"

type SpriteTerm struct {
	logger *log.Logger
}

func New(logger *log.Logger) *SpriteTerm {
	return &SpriteTerm{
		logger: logger,
	}
}
