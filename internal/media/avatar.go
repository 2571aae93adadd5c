package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	maxAvatarDim = 512
	webpQuality  = 85
)

// AvatarStore normaliza fotos de perfil (redimensiona e converte para
// webp) e publica no S3.
type AvatarStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewAvatarStore devolve nil quando o bucket não está configurado;
// o handler responde avatar_storage_disabled nesse caso.
func NewAvatarStore(cfg *config.Config) *AvatarStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
		),
	})

	baseURL := cfg.S3BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &AvatarStore{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}
}

func (s *AvatarStore) Upload(
	ctx context.Context,
	professionalID uint,
	file multipart.File,
) (string, error) {

	if s == nil {
		return "", httperr.ErrBusiness("avatar_storage_disabled")
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%d.webp", professionalID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

func shrink(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxAvatarDim && h <= maxAvatarDim {
		return src
	}

	if w >= h {
		h = h * maxAvatarDim / w
		w = maxAvatarDim
	} else {
		w = w * maxAvatarDim / h
		h = maxAvatarDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
