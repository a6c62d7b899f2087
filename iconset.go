// guitarplayer/appicon - application icon generator for guitarPlayer
// Copyright (C) 2026  The guitarPlayer authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package appicon

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

// DefaultDir is where Xcode expects the generated icon set.
const DefaultDir = "guitarPlayer/Assets.xcassets/AppIcon.appiconset"

// Entry pairs a pixel size with its file name in the icon set.
type Entry struct {
	Size int
	Name string
}

// Entries lists the ten images a macOS AppIcon.appiconset requires:
// 1x and 2x variants at the 16/32/128/256/512 point sizes.
var Entries = []Entry{
	{16, "icon_16x16.png"},
	{32, "icon_16x16@2x.png"},
	{32, "icon_32x32.png"},
	{64, "icon_32x32@2x.png"},
	{128, "icon_128x128.png"},
	{256, "icon_128x128@2x.png"},
	{256, "icon_256x256.png"},
	{512, "icon_256x256@2x.png"},
	{512, "icon_512x512.png"},
	{1024, "icon_512x512@2x.png"},
}

// Generate renders every entry and writes it as a PNG below dir,
// creating the directory (including parents) if needed. Files are
// written in table order; the first failure aborts and is returned.
func Generate(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	for _, e := range Entries {
		log.Printf("generating %s (%dx%d)", e.Name, e.Size, e.Size)
		if err := writePNG(filepath.Join(dir, e.Name), Render(e.Size)); err != nil {
			return fmt.Errorf("writing %s: %w", e.Name, err)
		}
	}

	log.Printf("generated all %d icons", len(Entries))
	return nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
