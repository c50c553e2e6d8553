package cli

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	cases := map[string]string{
		"photo.png":                      "photo_depth.png",
		filepath.Join("a", "b", "x.jpg"): filepath.Join("a", "b", "x_depth.jpg"),
		"archive.tar.gz":                 "archive.tar_depth.gz",
		"noext":                          "noext_depth",
		".png":                           ".png_depth",
		filepath.Join("dir.v2", "img"):   filepath.Join("dir.v2", "img_depth"),
	}
	for in, want := range cases {
		if got := OutputPath(in); got != want {
			t.Errorf("OutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}
