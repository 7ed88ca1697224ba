package deploy

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"
)

// Client is the subset of the S3 API the sync needs. *s3.Client satisfies it.
type Client interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ScanLocal hashes every file under root with bounded parallelism, keyed by
// its slash-separated path relative to root.
func ScanLocal(ctx context.Context, root string) ([]LocalFile, error) {
	paths, err := listLocalPaths(root)
	if err != nil {
		return nil, err
	}

	files := make([]LocalFile, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			file, err := scanLocalFile(root, path)
			if err != nil {
				return fmt.Errorf("failed to scan %s: %w", path, err)
			}
			files[i] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// ScanRemote lists every object in the bucket, following pagination.
func ScanRemote(ctx context.Context, client Client, bucket string) ([]RemoteFile, error) {
	var result []RemoteFile
	var continuationToken *string
	for {
		output, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, err)
		}
		for _, obj := range output.Contents {
			if obj.Key == nil || obj.Size == nil {
				continue
			}
			file := RemoteFile{
				Key: *obj.Key,
				Len: *obj.Size,
			}
			if obj.LastModified != nil {
				file.LastModified = *obj.LastModified
			}
			if obj.ETag != nil {
				file.ETag, file.HasETag = parseETag(*obj.ETag)
			}
			result = append(result, file)
		}
		continuationToken = output.NextContinuationToken
		if continuationToken == nil {
			break
		}
	}
	return result, nil
}

// BuildPlan diffs the local and remote listings: upload what is new or
// changed, delete remote objects gone locally for longer than the grace
// period.
func BuildPlan(local []LocalFile, remote []RemoteFile, now time.Time) (toUpload []LocalFile, toDelete []RemoteFile) {
	remoteIndex := make(map[string]RemoteFile, len(remote))
	for _, file := range remote {
		remoteIndex[file.Key] = file
	}
	localIndex := make(map[string]struct{}, len(local))
	for _, file := range local {
		localIndex[file.Key] = struct{}{}
	}

	for _, file := range local {
		if remoteFile, ok := remoteIndex[file.Key]; ok {
			if remoteFile.HasETag && remoteFile.ETag == file.MD5 {
				slog.Debug("Skipping local file: remote match found", "key", file.Key)
				continue
			}
			slog.Debug("Scheduling local file: remote ETag mismatch", "key", file.Key)
		} else {
			slog.Debug("Scheduling local file: missing from remote", "key", file.Key)
		}
		toUpload = append(toUpload, file)
	}

	for _, file := range remote {
		if _, ok := localIndex[file.Key]; ok {
			continue
		}
		if !file.LastModified.IsZero() && now.Sub(file.LastModified) > staleAfter {
			toDelete = append(toDelete, file)
		}
	}

	return toUpload, toDelete
}

// Sync deploys the build directory to the bucket.
func Sync(ctx context.Context, client Client, bucket, buildDir string) error {
	slog.Info("Scanning local files...", "dir", buildDir)
	local, err := ScanLocal(ctx, buildDir)
	if err != nil {
		return err
	}
	slog.Info("Scanned local files", "count", len(local))

	slog.Info("Scanning remote files...", "bucket", bucket)
	remote, err := ScanRemote(ctx, client, bucket)
	if err != nil {
		return err
	}
	slog.Info("Scanned remote files", "count", len(remote))

	toUpload, toDelete := BuildPlan(local, remote, time.Now())
	slog.Info("Deployment plan ready", "uploads", len(toUpload), "deletions", len(toDelete))

	for _, file := range toUpload {
		contentType := mime.TypeByExtension(filepath.Ext(file.Key))
		if contentType == "" {
			return fmt.Errorf("failed to determine content type for %s", file.Key)
		}

		slog.Info("Uploading", "key", file.Key, "bytes", file.Len)
		body, err := os.ReadFile(file.AbsolutePath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file.Key, err)
		}
		_, err = client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(bucket),
			Key:          aws.String(file.Key),
			Body:         bytes.NewReader(body),
			ContentType:  aws.String(contentType),
			ContentMD5:   aws.String(base64.StdEncoding.EncodeToString(file.MD5[:])),
			CacheControl: aws.String(file.CacheControl()),
		})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", file.Key, err)
		}
	}

	for _, file := range toDelete {
		slog.Info("Deleting", "key", file.Key)
		_, err := client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(file.Key),
		})
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", file.Key, err)
		}
	}

	slog.Info("Site deployment complete", "uploaded", len(toUpload), "deleted", len(toDelete))
	return nil
}
