package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExt(t *testing.T) {
	assert.Equal(t, "stl", Ext("part.STL"))
	assert.Equal(t, "gz", Ext("archive.tar.gz"))
	assert.Equal(t, "readme", Ext("README"))
	assert.Equal(t, "7z", Ext("models.7z"))
}

func TestSafeBaseName(t *testing.T) {
	assert.Equal(t, "my_part_v2", SafeBaseName("my part v2.stl"))
	assert.Equal(t, "bracket-final_rev.3", SafeBaseName("bracket-final_rev.3.step"))
	assert.Equal(t, "______", SafeBaseName("привет.zip"))
	assert.Equal(t, "file", SafeBaseName(".stl"))
}

func TestGenerateName(t *testing.T) {
	name := GenerateName("my part.stl")

	re := regexp.MustCompile(`^\d+_[0-9a-f]{24}_my_part\.stl$`)
	assert.Regexp(t, re, name)
}

func TestGenerateNameNeverCollides(t *testing.T) {
	// Identical original names must map to distinct storage names.
	a := GenerateName("part.stl")
	b := GenerateName("part.stl")
	assert.NotEqual(t, a, b)
}

func TestGenerateImageName(t *testing.T) {
	name := GenerateImageName("png")

	re := regexp.MustCompile(`^\d+_[0-9a-f]{32}\.png$`)
	assert.Regexp(t, re, name)
}
