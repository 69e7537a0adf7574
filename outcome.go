package cinelink

import (
	"encoding/json"
	"errors"
)

// Stage names the pipeline step that produced a failure.
type Stage string

// Pipeline stages.
const (
	StageExtraction Stage = "extraction"
	StageRedirect   Stage = "redirect"
	StageHostPage   Stage = "hostpage"
)

// Failure describes why a resolution did not produce links.
type Failure struct {
	Stage  Stage
	Reason string
}

// Outcome is the terminal result of resolving one URL. Exactly one of
// File and Failure is set.
type Outcome struct {
	// URL is the URL the resolution was started with.
	URL string

	// WorkingURL is the redirector URL the pipeline followed. It equals URL
	// unless URL was a content page.
	WorkingURL string

	File *HostedFile

	// Degraded is true when the hosting page could not be scraped and File
	// only carries the stream URL.
	Degraded bool

	Failure *Failure
}

// Succeeded returns a successful outcome.
func Succeeded(inputURL, workingURL string, file *HostedFile, degraded bool) *Outcome {
	return &Outcome{
		URL:        inputURL,
		WorkingURL: workingURL,
		File:       file,
		Degraded:   degraded,
	}
}

// Failed returns a failed outcome for the given stage. Application errors
// contribute their message; other errors their full text.
func Failed(inputURL string, stage Stage, err error) *Outcome {
	reason := "unknown error"
	var e *Error
	if errors.As(err, &e) {
		reason = e.Message
	} else if err != nil {
		reason = err.Error()
	}
	return &Outcome{
		URL:     inputURL,
		Failure: &Failure{Stage: stage, Reason: reason},
	}
}

// OK reports whether the outcome is a success.
func (o *Outcome) OK() bool {
	return o.Failure == nil && o.File != nil
}

// HasDownloads reports whether a successful outcome carries a usable link.
func (o *Outcome) HasDownloads() bool {
	return o.OK() && o.File.HasDownloads()
}

type downloadLinks struct {
	Stream   *string `json:"stream"`
	DirectCS *string `json:"directCS"`
	Direct1  *string `json:"direct1"`
	Google1  *string `json:"google1"`
	Google2  *string `json:"google2"`
	Telegram *string `json:"telegram"`
}

type successPayload struct {
	Status       bool          `json:"status"`
	FileName     string        `json:"fileName"`
	FileSize     string        `json:"fileSize"`
	StreamURL    string        `json:"streamUrl"`
	Download     downloadLinks `json:"download"`
	HasDownloads bool          `json:"hasDownloads"`
	Degraded     bool          `json:"degraded,omitempty"`
	URL          string        `json:"url"`
}

type failurePayload struct {
	Status bool   `json:"status"`
	Error  string `json:"error"`
	Stage  Stage  `json:"stage"`
	URL    string `json:"url"`
}

// MarshalJSON encodes the outcome as the success or failure payload.
// Absent mirrors encode as null.
func (o *Outcome) MarshalJSON() ([]byte, error) {
	if !o.OK() {
		f := failurePayload{URL: o.URL}
		if o.Failure != nil {
			f.Error = o.Failure.Reason
			f.Stage = o.Failure.Stage
		}
		return json.Marshal(f)
	}

	mirror := func(kind MirrorKind) *string {
		if u, ok := o.File.Mirror(kind); ok {
			return &u
		}
		return nil
	}
	var stream *string
	if o.File.StreamURL != "" {
		s := o.File.StreamURL
		stream = &s
	}

	return json.Marshal(successPayload{
		Status:    true,
		FileName:  o.File.FileName,
		FileSize:  o.File.FileSize,
		StreamURL: o.File.StreamURL,
		Download: downloadLinks{
			Stream:   stream,
			DirectCS: mirror(MirrorDirectCS),
			Direct1:  mirror(MirrorDirect1),
			Google1:  mirror(MirrorGoogle1),
			Google2:  mirror(MirrorGoogle2),
			Telegram: mirror(MirrorTelegram),
		},
		HasDownloads: o.HasDownloads(),
		Degraded:     o.Degraded,
		URL:          o.WorkingURL,
	})
}
