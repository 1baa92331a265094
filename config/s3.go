package config

type S3Config struct {
	BucketName string `validate:"required"`
	Region     string `validate:"required"`
	KeyPrefix  string
	// PublicURL is the base the stored objects are reachable under, for
	// example a CloudFront distribution. Defaults to the bucket endpoint.
	PublicURL string `validate:"omitempty,url"`
}

// GetS3Config returns nil when AUDIO_BUCKET is unset and audio is kept on
// local disk instead.
func GetS3Config() (*S3Config, error) {
	bucketName := getEnv("AUDIO_BUCKET", "")
	if bucketName == "" {
		return nil, nil
	}

	conf := &S3Config{
		BucketName: bucketName,
		Region:     getEnv("AWS_REGION", "ap-south-1"),
		KeyPrefix:  getEnv("AUDIO_KEY_PREFIX", "audio/"),
		PublicURL:  getEnv("AUDIO_PUBLIC_URL", ""),
	}
	if err := validateConfig("s3", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
