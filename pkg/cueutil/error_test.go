// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestFormatErrorNil(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "config.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}
}

func TestFormatErrorPlainError(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	err := FormatError(plain, "config.cue")
	if err == nil {
		t.Fatal("FormatError returned nil for non-nil input")
	}
	if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("error %q does not mention the file path", err.Error())
	}
	if !errors.Is(err, plain) {
		t.Error("plain errors should remain unwrappable")
	}
}

func TestFormatErrorCUEValidation(t *testing.T) {
	t.Parallel()

	ctx := cuecontext.New()
	schema := ctx.CompileString(`#C: { enabled: bool }`)
	user := ctx.CompileString(`enabled: "yes"`)
	unified := schema.LookupPath(cue.ParsePath("#C")).Unify(user)

	verr := unified.Validate()
	if verr == nil {
		t.Fatal("expected CUE validation error")
	}

	err := FormatError(verr, "config.cue")
	if err == nil {
		t.Fatal("FormatError returned nil for CUE error")
	}
	if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("error %q does not mention the file path", err.Error())
	}
	if !strings.Contains(err.Error(), "enabled") {
		t.Errorf("error %q does not mention the failing field", err.Error())
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "single field", path: []string{"manifest"}, want: "manifest"},
		{name: "nested field", path: []string{"system_packages", "enabled"}, want: "system_packages.enabled"},
		{name: "array index", path: []string{"interpreters", "0"}, want: "interpreters[0]"},
		{name: "index then field", path: []string{"a", "1", "b"}, want: "a[1].b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	data := []byte("app_dir: \".\"")
	if err := CheckFileSize(data, DefaultMaxFileSize, "config.cue"); err != nil {
		t.Errorf("CheckFileSize rejected a small file: %v", err)
	}
	if err := CheckFileSize(data, 4, "config.cue"); err == nil {
		t.Error("CheckFileSize accepted a file over the limit")
	}
}
