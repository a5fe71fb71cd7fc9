package bucket

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	puts    map[string][]byte
	deleted []string
	err     error
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[aws.StringValue(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.StringValue(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestUpload(t *testing.T) {
	api := &fakeS3{puts: map[string][]byte{}}
	c := NewClientWithAPI(api, "expansao")

	url, err := c.Upload(context.Background(), "snapshots/a.json", []byte(`{}`), "application/json")
	require.NoError(t, err)
	assert.Equal(t, "https://expansao.s3.amazonaws.com/snapshots/a.json", url)
	assert.Equal(t, []byte(`{}`), api.puts["snapshots/a.json"])

	require.NoError(t, c.Delete(context.Background(), "snapshots/a.json"))
	assert.Equal(t, []string{"snapshots/a.json"}, api.deleted)
}

func TestUploadError(t *testing.T) {
	c := NewClientWithAPI(&fakeS3{err: errors.New("boom")}, "b")
	_, err := c.Upload(context.Background(), "k", nil, "application/json")
	assert.ErrorContains(t, err, "boom")
}

func TestNilClient(t *testing.T) {
	var c *Client
	_, err := c.Upload(context.Background(), "k", nil, "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	c, err = NewClient(Config{})
	require.NoError(t, err)
	assert.Nil(t, c)
}
