package player

import "musicschool/pkg/models"

// SampleTracks is the demo playlist shown on the landing page.
func SampleTracks() []models.Track {
	return []models.Track{
		{ID: 1, Title: "Guitar Melody", Artist: "John Doe", Genre: "Acoustic", Duration: "3:24"},
		{ID: 2, Title: "Piano Dreams", Artist: "Jane Smith", Genre: "Classical", Duration: "4:12"},
		{ID: 3, Title: "Jazz Improvisation", Artist: "Chris Davis", Genre: "Jazz", Duration: "5:33"},
		{ID: 4, Title: "Electronic Beats", Artist: "Luke Harris", Genre: "EDM", Duration: "3:45"},
		{ID: 5, Title: "Blues Soul", Artist: "Ethan Moore", Genre: "Blues", Duration: "4:28"},
	}
}
