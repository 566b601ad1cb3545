package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func restoreSeams() {
	loadDefaultAWSConfig = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
}

func stubClients() {
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
}

func TestNewImageKey(t *testing.T) {
	a := newImageKey()
	b := newImageKey()
	require.True(t, strings.HasPrefix(a, "stories/"))
	require.NotEqual(t, a, b)
}

func TestPresignPut(t *testing.T) {
	t.Cleanup(restoreSeams)
	st := NewS3Storage(S3Config{Endpoint: "http://localhost:9000", Region: "us-east-1", Bucket: "lingora"})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("cfg")
	}
	_, _, err := st.PresignPut(context.Background())
	require.Error(t, err)

	stubClients()
	presignPutObject = func(_ *s3.PresignClient, _ context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		require.Equal(t, "lingora", *in.Bucket)
		require.True(t, strings.HasPrefix(*in.Key, "stories/"))
		return &v4.PresignedHTTPRequest{URL: "http://signed-put/" + *in.Key}, nil
	}
	url, key, err := st.PresignPut(context.Background())
	require.NoError(t, err)
	require.Equal(t, "http://signed-put/"+key, url)

	presignPutObject = func(*s3.PresignClient, context.Context, *s3.PutObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign")
	}
	_, _, err = st.PresignPut(context.Background())
	require.Error(t, err)
}

func TestPresignGet(t *testing.T) {
	t.Cleanup(restoreSeams)
	st := NewS3Storage(S3Config{Region: "us-east-1", Bucket: "lingora"})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("cfg")
	}
	_, err := st.PresignGet(context.Background(), "k")
	require.Error(t, err)

	stubClients()
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		require.Equal(t, "stories/2025/01/01/x", *in.Key)
		return &v4.PresignedHTTPRequest{URL: "http://signed-get"}, nil
	}
	url, err := st.PresignGet(context.Background(), "stories/2025/01/01/x")
	require.NoError(t, err)
	require.Equal(t, "http://signed-get", url)

	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign")
	}
	_, err = st.PresignGet(context.Background(), "k")
	require.Error(t, err)
}

func TestFakeStorage(t *testing.T) {
	f := &FakeStorage{}
	require.Panics(t, func() { f.PresignPut(context.Background()) })      //nolint:errcheck
	require.Panics(t, func() { f.PresignGet(context.Background(), "k") }) //nolint:errcheck

	f = &FakeStorage{
		PresignPutFn: func(context.Context) (string, string, error) { return "u", "k", nil },
		PresignGetFn: func(context.Context, string) (string, error) { return "g", nil },
	}
	u, k, err := f.PresignPut(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u", u)
	require.Equal(t, "k", k)
	g, err := f.PresignGet(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, "g", g)
}
