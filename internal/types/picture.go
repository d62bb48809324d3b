package types

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// AttachedPicture is an APIC frame.
type AttachedPicture struct {
	// MIMEType as declared in the frame, e.g. "image/jpeg".
	MIMEType string `json:"mimeType"`

	// PictureType is only meaningful when HasPictureType is true; the frame
	// may end before the picture type byte.
	PictureType    PictureType `json:"pictureType"`
	HasPictureType bool        `json:"hasPictureType"`

	Description string `json:"description"`

	// ImageData is the opaque picture payload.
	ImageData []byte `json:"-"`
}

// Kind implements Frame.
func (AttachedPicture) Kind() Kind { return KindAttachedPicture }
func (AttachedPicture) isFrame()   {}

func (f AttachedPicture) String() string {
	pt := "none"
	if f.HasPictureType {
		pt = f.PictureType.String()
	}
	return fmt.Sprintf("ID: APIC, mime-type: %s, picture-type: %s, description: %s. %d Bytes",
		f.MIMEType, pt, f.Description, len(f.ImageData))
}

// DetectMIMEType sniffs the MIME type from the image payload. Taggers often
// write "JPG", "-->" or nothing at all as the declared MIME type.
func (f AttachedPicture) DetectMIMEType() string {
	if len(f.ImageData) == 0 {
		return ""
	}
	return mimetype.Detect(f.ImageData).String()
}

// PictureType categorizes the purpose of an attached picture.
//
// See: https://id3.org/id3v2.3.0#Attached_picture
type PictureType byte

const (
	PictureOther             PictureType = iota // Other
	PictureIcon                                 // File icon (32x32 PNG)
	PictureOtherIcon                            // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright coloured fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other",
	"File icon (32x32 PNG)",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media (CD/vinyl label)",
	"Lead artist/performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/studio logotype",
}

func (t PictureType) String() string {
	if int(t) < len(pictureTypeNames) {
		return pictureTypeNames[t]
	}
	return fmt.Sprintf("Reserved (0x%02X)", byte(t))
}
