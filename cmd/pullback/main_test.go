package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Commands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"usage", nil, []string{"Commands:", "grad <op> <x...>"}},
		{"version", []string{"version"}, []string{"pullback " + version}},
		{"ops", []string{"ops"}, []string{"sin\n", "mul\n", "relu\n"}},
		{"binary", []string{"grad", "mul", "3", "5"}, []string{"mul(3, 5) = 15", "gradient = [5, 3]"}},
		{"unary", []string{"grad", "neg", "2"}, []string{"neg(2) = -2", "gradient = [-1]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tt.args, &out))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"train"}, `unknown command "train"`},
		{"missing op", []string{"grad"}, "missing primitive name"},
		{"unknown op", []string{"grad", "gelu", "1"}, `unknown primitive "gelu"`},
		{"bad float", []string{"grad", "sin", "x"}, "parse argument"},
		{"wrong arity", []string{"grad", "sin", "1", "2"}, "sin takes 1 arguments, got 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.args, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_Demo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"demo"}, &out))

	s := out.String()
	assert.Contains(t, s, "x=1  f=0.841471  f'=1.381773")
	assert.Contains(t, s, "checkpoint(exp∘sin)")
	assert.True(t, strings.HasSuffix(s, "w=[2.0000 -1.0000]  b=0.5000\n"), s)
}
