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

// Command gen-appicon writes the guitarPlayer application icon set into
// the Xcode asset catalog. It takes no arguments.
package main

import (
	"log"

	"github.com/guitarplayer/appicon"
)

func main() {
	log.SetFlags(0)
	if err := appicon.Generate(appicon.DefaultDir); err != nil {
		log.Fatal(err)
	}
}
