package s3

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var errMultipart = errors.New("fake s3: multipart upload not supported")

// fakeS3 is an in-memory bucket.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(data)))}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	if r := aws.ToString(in.Range); r != "" {
		var lo, hi int
		if _, err := fmt.Sscanf(r, "bytes=%d-%d", &lo, &hi); err != nil {
			return nil, err
		}
		data = data[lo : min(hi+1, len(data))]
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(slices.Clone(data)))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for _, k := range f.keys() {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
		}
	}
	return out, nil
}

func (f *fakeS3) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errMultipart
}

func (f *fakeS3) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errMultipart
}

func (f *fakeS3) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errMultipart
}

func (f *fakeS3) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, errMultipart
}

// fakeDDB is an in-memory commit table keyed by (blob, version).
type fakeDDB struct {
	mu    sync.Mutex
	items map[string][]map[string]ddbtypes.AttributeValue

	// beforePut, if set, runs once before the next PutItem is applied.
	beforePut func()
	// afterQuery, if set, runs once after the next Query has been answered.
	afterQuery func()
}

func newFakeDDB() *fakeDDB {
	return &fakeDDB{items: make(map[string][]map[string]ddbtypes.AttributeValue)}
}

func itemVersion(item map[string]ddbtypes.AttributeValue) uint64 {
	v, _ := strconv.ParseUint(item["version"].(*ddbtypes.AttributeValueMemberN).Value, 10, 64)
	return v
}

func (f *fakeDDB) put(item map[string]ddbtypes.AttributeValue) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	pk := item["blob"].(*ddbtypes.AttributeValueMemberS).Value
	for _, existing := range f.items[pk] {
		if itemVersion(existing) == itemVersion(item) {
			return &ddbtypes.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}
	f.items[pk] = append(f.items[pk], item)
	return nil
}

func (f *fakeDDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	hook := f.beforePut
	f.beforePut = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err := f.put(in.Item); err != nil {
		return nil, err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	out := f.query(in)

	f.mu.Lock()
	hook := f.afterQuery
	f.afterQuery = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (f *fakeDDB) query(in *dynamodb.QueryInput) *dynamodb.QueryOutput {
	f.mu.Lock()
	defer f.mu.Unlock()

	pk := in.ExpressionAttributeValues[":b"].(*ddbtypes.AttributeValueMemberS).Value
	items := slices.Clone(f.items[pk])
	slices.SortFunc(items, func(a, b map[string]ddbtypes.AttributeValue) int {
		va, vb := itemVersion(a), itemVersion(b)
		if in.ScanIndexForward == nil || *in.ScanIndexForward {
			return cmp.Compare(va, vb)
		}
		return cmp.Compare(vb, va)
	})
	if n := int(aws.ToInt32(in.Limit)); n > 0 && len(items) > n {
		items = items[:n]
	}
	return &dynamodb.QueryOutput{Items: items, Count: int32(len(items))}
}
