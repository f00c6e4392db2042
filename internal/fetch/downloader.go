package fetch

import (
	"context"

	lg "github.com/Andrej220/go-utils/zlog"
	"github.com/google/uuid"
)

// Job identifies one enclosure download. The ID correlates the log
// lines a single download produces across workers.
type Job struct {
	ID    uuid.UUID
	Title string
	URL   string
}

func NewJob(title, url string) Job {
	return Job{ID: uuid.New(), Title: title, URL: url}
}

// Downloader fetches one enclosure and persists it.
type Downloader struct {
	client *Client
	store  *Store
}

func NewDownloader(client *Client, store *Store) *Downloader {
	return &Downloader{client: client, store: store}
}

// Download retrieves the job's URL and saves it under a filename
// derived from the URL's last path segment.
func (d *Downloader) Download(ctx context.Context, job Job) error {
	logger := lg.FromContext(ctx).With(
		lg.String("job_id", job.ID.String()),
		lg.String("url", job.URL),
	)

	name := Filename(job.URL)
	logger.Info("downloading enclosure", lg.String("file", name), lg.String("title", job.Title))

	data, err := d.client.Fetch(ctx, job.URL)
	if err != nil {
		return err
	}
	if err := d.store.Save(name, data); err != nil {
		return err
	}

	logger.Info("saved enclosure", lg.String("file", name), lg.Int("bytes", len(data)))
	return nil
}
