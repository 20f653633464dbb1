// Package source loads image bytes for jpegorient from data URIs, local
// files, HTTP(S) URLs and S3 objects.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	jor "github.com/garyhouston/jpegorient"
)

var (
	ErrEmptyRef = errors.New("empty image reference")
	ErrFetch    = errors.New("could not load image")
	ErrNoS3     = errors.New("no S3 client configured")
)

const defaultType = "application/octet-stream"

// Loader resolves image references into bytes. The zero value loads data
// URIs and files, and uses http.DefaultClient for URLs.
type Loader struct {
	Client *http.Client
	S3     s3iface.S3API
}

// Load returns the bytes and MIME type of the image named by ref, which
// is a data URI, an http or https URL, an s3://bucket/key URL, a file URL
// or a file path.
func (l *Loader) Load(ctx context.Context, ref string) (jor.Blob, error) {
	switch {
	case ref == "":
		return jor.Blob{}, ErrEmptyRef
	case jor.IsDataURI(ref):
		return jor.DecodeDataURIToBlob(ref)
	case hasScheme(ref, "http://"), hasScheme(ref, "https://"):
		return l.loadHTTP(ctx, ref)
	case hasScheme(ref, "s3://"):
		return l.loadS3(ctx, ref)
	case hasScheme(ref, "file://"):
		u, err := url.Parse(ref)
		if err != nil {
			return jor.Blob{}, fmt.Errorf("%s: %w", ref, err)
		}
		return loadFile(u.Path)
	default:
		return loadFile(ref)
	}
}

func hasScheme(ref, scheme string) bool {
	return len(ref) >= len(scheme) && strings.EqualFold(ref[:len(scheme)], scheme)
}

func (l *Loader) loadHTTP(ctx context.Context, ref string) (jor.Blob, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return jor.Blob{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return jor.Blob{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return jor.Blob{}, fmt.Errorf("%w: %s: %s", ErrFetch, ref, resp.Status)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return jor.Blob{}, fmt.Errorf("%w: %s: %v", ErrFetch, ref, err)
	}
	return jor.Blob{Data: data, Type: contentType(resp.Header.Get("Content-Type"), ref)}, nil
}

func (l *Loader) loadS3(ctx context.Context, ref string) (jor.Blob, error) {
	if l.S3 == nil {
		return jor.Blob{}, ErrNoS3
	}
	bucket, key, err := splitS3(ref)
	if err != nil {
		return jor.Blob{}, err
	}
	result, err := l.S3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return jor.Blob{}, fmt.Errorf("%w: %s: %v", ErrFetch, ref, err)
	}
	defer result.Body.Close()
	data, err := ioutil.ReadAll(result.Body)
	if err != nil {
		return jor.Blob{}, fmt.Errorf("%w: %s: %v", ErrFetch, ref, err)
	}
	return jor.Blob{Data: data, Type: contentType(aws.StringValue(result.ContentType), key)}, nil
}

// Split s3://bucket/key.
func splitS3(ref string) (string, string, error) {
	path := ref[len("s3://"):]
	bucket, key, found := strings.Cut(path, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%s: expected s3://bucket/key", ref)
	}
	return bucket, key, nil
}

func loadFile(path string) (jor.Blob, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return jor.Blob{}, err
	}
	return jor.Blob{Data: data, Type: contentType("", path)}, nil
}

// Use the declared type if there is one, else guess from the name.
func contentType(declared, name string) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
			return mediaType
		}
	}
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		mediaType, _, _ := mime.ParseMediaType(t)
		return mediaType
	}
	return defaultType
}

// ReadAll reads an image from r, for callers which already have a stream.
func ReadAll(r io.Reader, mimeType string) (jor.Blob, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return jor.Blob{}, err
	}
	if mimeType == "" {
		mimeType = defaultType
	}
	return jor.Blob{Data: data, Type: mimeType}, nil
}

// S3Config holds the settings for an S3 compatible endpoint.
type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	MaxRetries      int
	HTTPClient      *http.Client
}

// NewS3Client creates an S3 client using path style addressing, which
// most S3 compatible stores expect. Without keys, the SDK's default
// credential chain is used.
func NewS3Client(cfg S3Config) (*s3.S3, error) {
	awsCfg := &aws.Config{
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Region != "" {
		awsCfg.Region = aws.String(cfg.Region)
	} else {
		awsCfg.Region = aws.String("us-east-1")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.MaxRetries > 0 {
		awsCfg.MaxRetries = aws.Int(cfg.MaxRetries)
	}
	if cfg.HTTPClient != nil {
		awsCfg.HTTPClient = cfg.HTTPClient
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}
