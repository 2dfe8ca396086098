package uploads

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	awsBucketFlag    = "aws-bucket"
	awsRegionFlag    = "aws-region"
	awsEndpointFlag  = "aws-endpoint"
	publicBaseURLFlag = "uploads-public-base-url"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   awsBucketFlag,
			Usage:  "aws bucket for uploaded posters",
			EnvVar: "AWS_BUCKET",
		},
		cli.StringFlag{
			Name:   awsRegionFlag,
			Usage:  "aws region",
			Value:  "us-east-1",
			EnvVar: "AWS_REGION",
		},
		cli.StringFlag{
			Name:   awsEndpointFlag,
			Usage:  "aws endpoint for s3-compatible storage",
			EnvVar: "AWS_ENDPOINT",
		},
		cli.StringFlag{
			Name:   publicBaseURLFlag,
			Usage:  "public base url of uploaded objects",
			EnvVar: "UPLOADS_PUBLIC_BASE_URL",
		},
	)
}

// S3 stores poster images in an S3-compatible bucket and hands back the
// public URL that goes into the video draft.
type S3 struct {
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

// New returns nil when no bucket is configured; the video form then
// falls back to a plain image URL field.
func New(ctx context.Context, c *cli.Context) (*S3, error) {
	bucket := c.String(awsBucketFlag)
	if bucket == "" {
		return nil, nil
	}
	region := c.String(awsRegionFlag)
	endpoint := c.String(awsEndpointFlag)

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if strings.TrimSpace(endpoint) != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == s3.ServiceID {
				return aws.Endpoint{
					URL:           endpoint,
					SigningRegion: region,
				}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	log.Infof("poster uploads to bucket %v", bucket)
	return &S3{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		baseURL:  strings.TrimSuffix(c.String(publicBaseURLFlag), "/"),
	}, nil
}

// Save uploads one object and returns its public location.
func (s *S3) Save(ctx context.Context, key string, r io.Reader) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", errors.New("empty object key")
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
		ACL:    s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %v", key)
	}

	if s.baseURL == "" {
		return key, nil
	}
	return fmt.Sprintf("%v/%v", s.baseURL, key), nil
}
