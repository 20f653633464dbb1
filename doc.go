/*
Package jpegorient finds the Exif orientation of JPEG images and converts
it to the rotation and scaling that displays the image upright. It also
converts image data to and from base64 data URIs.

Only the first APP1 segment and the Orientation tag of its 0th IFD are
looked at. Images without them, including anything which isn't a JPEG,
simply have no orientation. Reading the orientation resets the stored
value to 1, so a buffer which has been corrected once won't be rotated
again.

Example: Print the orientation of a JPEG file.

   package main

   import (
   	"fmt"
   	jor "github.com/garyhouston/jpegorient"
   	"io/ioutil"
   	"log"
   	"os"
   )

   func main() {
   	if len(os.Args) != 2 {
   		fmt.Printf("Usage: %s file\n", os.Args[0])
   		return
   	}
   	buf, err := ioutil.ReadFile(os.Args[1])
   	if err != nil {
   		log.Fatal(err)
   	}
   	orientation, found := jor.GetOrientation(buf)
   	if !found {
   		fmt.Println("no orientation")
   		return
   	}
   	fmt.Printf("%s: %s\n", orientation, jor.ToDescriptor(orientation))
   }

Example: Find the transform for an image given as a data URI.

   package main

   import (
   	"fmt"
   	jor "github.com/garyhouston/jpegorient"
   	"log"
   	"os"
   )

   func main() {
   	buf, err := jor.DecodeDataURI(os.Args[1])
   	if err != nil {
   		log.Fatal(err)
   	}
   	d := jor.Parse(buf)
   	fmt.Printf("rotate %d, scale %d %d\n", d.Rotate, d.ScaleX, d.ScaleY)
   }

The jpegorient command in the subdirectory of the same name loads images
from files, data URIs, HTTP and S3, and prints or normalizes their
orientation.
*/
package jpegorient
