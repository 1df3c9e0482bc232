// Copyright 2020 Aleksandr Demakin. All rights reserved.

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	a := assert.New(t)
	defer Reset()

	var b bytes.Buffer
	l := Setup(Config{Out: &b})
	a.Equal(l, L())
	l.Debug("hidden")
	l.Info("value.decoded", "class", "normal")
	a.Equal("level=INFO msg=value.decoded class=normal\n", b.String())

	b.Reset()
	Setup(Config{Out: &b, Debug: true})
	L().Debug("shown", "bits", "0x4229ae14")
	a.Equal("level=DEBUG msg=shown bits=0x4229ae14\n", b.String())
}

func TestReset(t *testing.T) {
	a := assert.New(t)
	var b bytes.Buffer
	Setup(Config{Out: &b})
	Reset()
	L().Info("dropped")
	a.Empty(b.String())

	l := Setup(Config{})
	l.Info("dropped too")
	Reset()
}
