//go:build foclut

package foc

import "github.com/soypat/foc/trig"

var defaultSine Sine = trig.Sin
