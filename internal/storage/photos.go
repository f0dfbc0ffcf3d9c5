package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/TallerTurnos01/taller-scheduler/internal/config"
)

const maxPhotoWidth = 1024

// PhotoStore procesa y sube las fotos de los talleres: decodifica
// jpeg/png, reescala, convierte a webp y guarda en S3.
type PhotoStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &PhotoStore{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}
}

func (s *PhotoStore) Enabled() bool {
	return s != nil && s.bucket != ""
}

// UploadTallerPhoto devuelve la URL pública del objeto subido.
func (s *PhotoStore) UploadTallerPhoto(
	ctx context.Context,
	tallerID uint,
	r io.Reader,
) (string, error) {

	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	img = scaleDown(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("talleres/%d/%s.webp", tallerID, uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxPhotoWidth {
		return src
	}

	h := b.Dy() * maxPhotoWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxPhotoWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
