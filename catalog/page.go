package catalog

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type CoursePage struct {
	Code        string
	Title       string
	Description string
}

// ParseCoursePage reads a catalog course page. The course is described by the
// first paragraph of the page body.
func ParseCoursePage(r io.Reader) (CoursePage, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return CoursePage{}, err
	}

	paragraph := document.Find("#bukku-page > p").First()
	if paragraph.Length() == 0 {
		return CoursePage{}, errors.New("Unable to find course paragraph")
	}

	title := strings.TrimSpace(paragraph.Find(".course_title").First().Text())
	if title == "" {
		return CoursePage{}, errors.New("Unable to determine course title")
	}

	code := strings.TrimSpace(paragraph.Find(".course_address").First().Text())
	description := strings.Join(strings.Fields(paragraph.Text()), " ")

	return CoursePage{Code: code, Title: title, Description: description}, nil
}

func (p CoursePage) Requisites() []Requisite {
	return ExtractRequisites(p.Description)
}
