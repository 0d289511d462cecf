package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowedImageFile(t *testing.T) {
	require.True(t, AllowedImageFile("photo.png"))
	require.True(t, AllowedImageFile("PHOTO.JPG"))
	require.True(t, AllowedImageFile("anim.webp"))
	require.False(t, AllowedImageFile("notes.txt"))
	require.False(t, AllowedImageFile("archive.png.zip"))
	require.False(t, AllowedImageFile("noextension"))
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "photo.png", SanitizeFilename("photo.png"))
	require.Equal(t, "my_photo.png", SanitizeFilename("my photo.png"))
	require.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	require.Equal(t, "upload", SanitizeFilename("..."))
	require.Equal(t, "b.png", SanitizeFilename("a/b.png"))
}
