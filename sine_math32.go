//go:build !foclut

package foc

import "github.com/chewxy/math32"

var defaultSine Sine = math32.Sin
