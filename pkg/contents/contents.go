// Package contents wraps the training-contents and lectures endpoint group,
// including lecture material download.
package contents

import (
	"context"
	"io"

	"traineeportal/pkg/normalize"
	"traineeportal/pkg/portal"
	"traineeportal/pkg/tools/json"
)

type (
	Service struct {
		cli *portal.Client
	}

	Content struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Description  string `json:"description,omitempty"`
		Instructor   string `json:"instructor,omitempty"`
		LectureCount int    `json:"lectureCount"`
	}

	Lecture struct {
		ID        string `json:"id"`
		ContentID string `json:"contentId"`
		Title     string `json:"title"`
		Date      string `json:"date,omitempty"`
		HasFile   bool   `json:"hasFile"`
	}

	ContentList struct {
		Contents []Content `json:"contents"`
	}

	LectureList struct {
		Lectures []Lecture `json:"lectures"`
	}
)

func NewService(cli *portal.Client) *Service {
	return &Service{cli: cli}
}

// Contents lists the trainee's training contents in the canonical wrapper.
func (s *Service) Contents(ctx context.Context, token string) (normalize.Envelope[ContentList], error) {
	raw, err := portal.Get[json.RawMessage](ctx, s.cli, portal.EndpointTrainingContents, token)
	if err != nil {
		return normalize.Envelope[ContentList]{}, err
	}

	return normalize.Wrap(raw, "contents", func(l *ContentList) {
		l.Contents = normalize.Collection(l.Contents)
	})
}

// Lectures lists the lectures of one training content.
func (s *Service) Lectures(ctx context.Context, token, contentID string) (normalize.Envelope[LectureList], error) {
	path := portal.EndpointTrainingContents + "/" + contentID + "/lectures"
	raw, err := portal.Get[json.RawMessage](ctx, s.cli, path, token)
	if err != nil {
		return normalize.Envelope[LectureList]{}, err
	}

	return normalize.Wrap(raw, "lectures", func(l *LectureList) {
		l.Lectures = normalize.Collection(l.Lectures)
	})
}

// Lecture fetches one lecture by id.
func (s *Service) Lecture(ctx context.Context, token, lectureID string) (Lecture, error) {
	raw, err := portal.Get[json.RawMessage](ctx, s.cli, portal.EndpointLectures+"/"+lectureID, token)
	if err != nil {
		return Lecture{}, err
	}

	env, err := normalize.Wrap[Lecture](raw, "", nil)
	if err != nil {
		return Lecture{}, err
	}
	return env.Data, nil
}

// DownloadMaterial streams a lecture's attached document to w and returns the
// number of bytes written.
func (s *Service) DownloadMaterial(ctx context.Context, token, lectureID string, w io.Writer) (int64, error) {
	path := portal.EndpointLectures + "/" + lectureID + "/material"
	return s.cli.Download(ctx, path, token, w)
}
