// Package art bundles the static ASCII assets and hands them out as
// plain strings with whitespace and line breaks intact.
package art

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed assets/catto.txt
var cattoText string

//go:embed assets/heart.txt
var heartText string

// CattoLines is the expected height of the cat silhouette. The portrait
// zone math was tuned against this exact asset.
const CattoLines = 83

// ErrBadAsset reports a bundled asset that is missing or malformed.
// There is no fallback art; callers treat this as fatal.
var ErrBadAsset = errors.New("art: bad asset")

// Catto returns the cat silhouette.
func Catto() (string, error) {
	if strings.TrimSpace(cattoText) == "" {
		return "", fmt.Errorf("%w: catto asset is empty", ErrBadAsset)
	}
	if n := len(Lines(cattoText)); n != CattoLines {
		return "", fmt.Errorf("%w: catto asset has %d lines, want %d", ErrBadAsset, n, CattoLines)
	}
	return cattoText, nil
}

// Heart returns the companion piece the heart overlay is measured
// against.
func Heart() (string, error) {
	if strings.TrimSpace(heartText) == "" {
		return "", fmt.Errorf("%w: heart asset is empty", ErrBadAsset)
	}
	return heartText, nil
}

// Lines splits an asset into rows, dropping the trailing newline so the
// last row is not an empty phantom line.
func Lines(text string) []string {
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}
