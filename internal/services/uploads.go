package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	errs "github.com/AlexYaroshuk/chat-CBD2/internal/errors"
)

// Signed urls never rotate; every stored object is readable until this date.
// Matches the expiry the original bucket rules were provisioned with.
var signedUrlExpiry = time.Date(2491, time.September, 3, 0, 0, 0, 0, time.UTC)

// UploadService copies a remotely hosted image into the storage bucket and
// returns a signed read url for it.
type UploadService interface {
	Upload(ctx context.Context, remoteUrl string) (string, error)
}

// ObjectStore is the slice of bucket behaviour the uploader needs.
type ObjectStore interface {
	Write(ctx context.Context, name, contentType string, data io.Reader) error
	SignedUrl(name string, expires time.Time) (string, error)
}

type uploadServiceImpl struct {
	httpClient *http.Client
	store      ObjectStore
}

func NewUploadServiceImpl(store ObjectStore) *uploadServiceImpl {
	return &uploadServiceImpl{
		httpClient: http.DefaultClient,
		store:      store,
	}
}

// Upload fetches the image, writes it under a fresh {uuid}.{ext} name with
// the fetched content type, and signs a read url. A failed write can leave a
// partial object behind; nothing cleans those up.
func (s *uploadServiceImpl) Upload(ctx context.Context, remoteUrl string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteUrl, nil)
	if err != nil {
		return "", &errs.FetchError{Url: remoteUrl, Cause: err}
	}
	response, err := s.httpClient.Do(request)
	if err != nil {
		return "", &errs.FetchError{Url: remoteUrl, Cause: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", &errs.FetchError{Url: remoteUrl, Status: response.StatusCode}
	}

	objectName := fmt.Sprintf("%s.%s", uuid.NewString(), extensionOf(remoteUrl))
	contentType := response.Header.Get("Content-Type")
	if err := s.store.Write(ctx, objectName, contentType, response.Body); err != nil {
		return "", err
	}

	signedUrl, err := s.store.SignedUrl(objectName, signedUrlExpiry)
	if err != nil {
		return "", &errs.SignError{Object: objectName, Cause: err}
	}
	return signedUrl, nil
}

// extensionOf returns the substring after the last "." of the url path,
// with any query string stripped first. Urls without an extension produce
// garbage names; those objects are still stored and served fine.
func extensionOf(remoteUrl string) string {
	withoutQuery := remoteUrl
	if i := strings.Index(withoutQuery, "?"); i >= 0 {
		withoutQuery = withoutQuery[:i]
	}
	if i := strings.LastIndex(withoutQuery, "."); i >= 0 {
		return withoutQuery[i+1:]
	}
	return ""
}

type bucketObjectStoreImpl struct {
	bucket *storage.BucketHandle
}

func NewBucketObjectStoreImpl(bucket *storage.BucketHandle) *bucketObjectStoreImpl {
	return &bucketObjectStoreImpl{bucket: bucket}
}

func (s *bucketObjectStoreImpl) Write(ctx context.Context, name, contentType string, data io.Reader) error {
	writer := s.bucket.Object(name).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := io.Copy(writer, data); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

func (s *bucketObjectStoreImpl) SignedUrl(name string, expires time.Time) (string, error) {
	return s.bucket.SignedURL(name, &storage.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: expires,
	})
}
