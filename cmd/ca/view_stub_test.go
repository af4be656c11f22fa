//go:build !ebiten

package main

import (
	"strings"
	"testing"
)

func TestViewWithoutEbitenTag(t *testing.T) {
	err := viewCmd.RunE(viewCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "-tags ebiten") {
		t.Fatalf("error = %v, want build-tag hint", err)
	}
}
