// Package content holds the degraded-mode sample data served when the
// primary store cannot answer. Nothing here is production data.
package content

import "github.com/santoscleaning/website-api/internal/usecase"

type SampleReviewProvider struct{}

func NewSampleReviewProvider() *SampleReviewProvider {
	return &SampleReviewProvider{}
}

func (p *SampleReviewProvider) Samples() []usecase.ReviewView {
	return []usecase.ReviewView{
		{
			AuthorName:      "Maria Rodriguez",
			Rating:          5,
			Text:            "Santos Cleaning Solutions exceeded all my expectations! Karen and William are incredibly professional and detail-oriented.",
			RelativeTime:    "2 weeks ago",
			ProfilePhotoURL: "https://ui-avatars.com/api/?name=Maria+Rodriguez&background=4285F4&color=fff&size=128&font-size=0.6&bold=true",
		},
		{
			AuthorName:      "John Smith",
			Rating:          5,
			Text:            "Best cleaning service in Marietta! They pay attention to every detail and are incredibly reliable.",
			RelativeTime:    "1 month ago",
			ProfilePhotoURL: "https://ui-avatars.com/api/?name=John+Smith&background=34A853&color=fff&size=128&font-size=0.6&bold=true",
		},
	}
}
