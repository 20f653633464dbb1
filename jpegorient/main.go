package main

// Print, normalize and convert the Exif orientation of JPEG images.

import "github.com/garyhouston/jpegorient/jpegorient/cmd"

func main() {
	cmd.Execute()
}
