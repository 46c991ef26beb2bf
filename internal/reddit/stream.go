// Package reddit adapts the Reddit API to per-source submission streams.
package reddit

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	graw "github.com/vartanbeno/go-reddit/v2/reddit"

	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/config"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/models"
)

// Stream opens live submission feeds, one subreddit at a time. Existing
// submissions at subscribe time are skipped; only new posts flow through.
type Stream struct {
	client   *graw.Client
	interval time.Duration
	logger   zerolog.Logger
}

// NewStream authenticates a script-app Reddit client.
func NewStream(creds config.Credentials, pollInterval time.Duration, logger zerolog.Logger) (*Stream, error) {
	client, err := graw.NewClient(
		graw.Credentials{
			ID:       creds.RedditClientID,
			Secret:   creds.RedditClientSecret,
			Username: creds.RedditUsername,
			Password: creds.RedditPassword,
		},
		graw.WithUserAgent(creds.RedditUserAgent),
	)
	if err != nil {
		return nil, err
	}

	return &Stream{
		client:   client,
		interval: pollInterval,
		logger:   logger,
	}, nil
}

// Subscribe starts streaming new submissions from one subreddit. The post
// channel closes when the upstream stream ends or ctx is cancelled; the
// first upstream error is delivered on the error channel and terminates
// the stream, matching the one-failure-kills-one-worker contract.
func (s *Stream) Subscribe(ctx context.Context, subreddit string) (<-chan models.Post, <-chan error) {
	posts, errs, stop := s.client.Stream.Posts(
		subreddit,
		graw.StreamInterval(s.interval),
		graw.StreamDiscardInitial,
	)

	out := make(chan models.Post)
	fatal := make(chan error, 1)

	go func() {
		defer stop()
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case p, ok := <-posts:
				if !ok {
					return
				}
				if p == nil {
					continue
				}
				post := models.Post{
					ID:     p.FullID,
					Title:  p.Title,
					Body:   p.Body,
					Source: "r/" + subreddit,
					URL:    p.URL,
				}
				if p.Created != nil {
					post.CreatedAt = p.Created.Time
				}
				select {
				case out <- post:
				case <-ctx.Done():
					return
				}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				if err != nil {
					fatal <- err
					return
				}
			}
		}
	}()

	return out, fatal
}
