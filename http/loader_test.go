package http_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DS123-ally/websummary"
	wshttp "github.com/DS123-ally/websummary/http"
	"github.com/DS123-ally/websummary/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("produces a single document with metadata", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><article><p>Example content.</p></article></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*websummary.ExtractResult, error) {
				return &websummary.ExtractResult{Title: "Example Domain", ContentHTML: "<p>Example content.</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "Example content.", nil
			},
		}

		loader := wshttp.NewLoader(fetcher, extractor, converter)
		docs, err := loader.Load(context.Background(), "https://example.com")

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "https://example.com", docs[0].SourceURL)
		assert.Equal(t, "Example Domain", docs[0].Title)
		assert.Equal(t, "Example content.", docs[0].Content)
		assert.NotEmpty(t, docs[0].ID)
		assert.Len(t, docs[0].ContentHash, 16)
		assert.False(t, docs[0].FetchedAt.IsZero())
	})

	t.Run("propagates fetch errors unchanged", func(t *testing.T) {
		t.Parallel()

		wantErr := websummary.Errorf(websummary.EUNAVAILABLE, "HTTP 503 for https://example.com")
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", wantErr
			},
		}

		loader := wshttp.NewLoader(fetcher, &mock.Extractor{}, &mock.Converter{})
		_, err := loader.Load(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, websummary.EUNAVAILABLE, websummary.ErrorCode(err))
		assert.Contains(t, websummary.ErrorMessage(err), "503")
	})

	t.Run("returns ENOTFOUND when extraction fails", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*websummary.ExtractResult, error) {
				return nil, errors.New("unparseable")
			},
		}

		loader := wshttp.NewLoader(fetcher, extractor, &mock.Converter{})
		_, err := loader.Load(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, websummary.ENOTFOUND, websummary.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when content is empty", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*websummary.ExtractResult, error) {
				return &websummary.ExtractResult{Title: "Empty"}, nil
			},
		}

		loader := wshttp.NewLoader(fetcher, extractor, &mock.Converter{})
		_, err := loader.Load(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, websummary.ENOTFOUND, websummary.ErrorCode(err))
		assert.Contains(t, websummary.ErrorMessage(err), "no content found")
	})

	t.Run("returns ENOTFOUND when conversion yields only whitespace", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><div> </div></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*websummary.ExtractResult, error) {
				return &websummary.ExtractResult{ContentHTML: "<div> </div>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "  \n ", nil
			},
		}

		loader := wshttp.NewLoader(fetcher, extractor, converter)
		_, err := loader.Load(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, websummary.ENOTFOUND, websummary.ErrorCode(err))
	})
}
