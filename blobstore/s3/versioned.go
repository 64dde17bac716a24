package s3

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/hupe1980/bitvec/blobstore"
)

// ErrConcurrentModification is returned when another writer committed a
// version of the same name first.
var ErrConcurrentModification = errors.New("s3: concurrent modification detected")

// DDBClient is the subset of the DynamoDB API the versioned store uses.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DDBClient = (*dynamodb.Client)(nil)

// VersionedStore implements blobstore.BlobStore on S3 with a DynamoDB
// commit log.
//
// Each Put writes the data to a new immutable object "<name>@v<N>-<id>"
// and then inserts version N into the log with a conditional write. A Delete
// commits a tombstone. Open reads the newest committed version.
//
// Table schema:
//   - Partition key: blob (string), the store URI plus the blob name
//   - Sort key: version (number)
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name bitvec-commits \
//	  --attribute-definitions AttributeName=blob,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=blob,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type VersionedStore struct {
	objects *Store
	ddb     DDBClient
	table   string
	baseURI string
}

// NewVersionedStore creates a VersionedStore. baseURI, e.g.
// "s3://bucket/prefix", namespaces the log entries of this store.
func NewVersionedStore(objects *Store, ddb DDBClient, table, baseURI string) *VersionedStore {
	return &VersionedStore{
		objects: objects,
		ddb:     ddb,
		table:   table,
		baseURI: baseURI,
	}
}

type commit struct {
	version uint64
	object  string
	deleted bool
}

// objectName returns a fresh key for version of name. Two writers racing
// for the same version never write the same object.
func objectName(name string, version uint64) string {
	return fmt.Sprintf("%s@v%d-%s", name, version, uuid.NewString())
}

// splitObjectName reverses objectName.
func splitObjectName(obj string) (string, uint64, bool) {
	i := strings.LastIndex(obj, "@v")
	if i < 0 {
		return "", 0, false
	}
	num, _, ok := strings.Cut(obj[i+2:], "-")
	if !ok {
		return "", 0, false
	}
	v, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return "", 0, false
	}
	return obj[:i], v, true
}

func (s *VersionedStore) partition(name string) string {
	return s.baseURI + "#" + name
}

// Open opens the newest version of name.
func (s *VersionedStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	c, err := s.head(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil || c.deleted {
		return nil, fmt.Errorf("s3: %s: %w", name, blobstore.ErrNotFound)
	}
	return s.objects.Open(ctx, c.object)
}

// OpenVersion opens a specific committed version of name.
func (s *VersionedStore) OpenVersion(ctx context.Context, name string, version uint64) (blobstore.Blob, error) {
	commits, err := s.query(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	for _, c := range commits {
		if c.version == version && !c.deleted {
			return s.objects.Open(ctx, c.object)
		}
	}
	return nil, fmt.Errorf("s3: %s version %d: %w", name, version, blobstore.ErrNotFound)
}

// Version returns the newest committed version of name, 0 if none.
func (s *VersionedStore) Version(ctx context.Context, name string) (uint64, error) {
	c, err := s.head(ctx, name)
	if err != nil || c == nil {
		return 0, err
	}
	return c.version, nil
}

// Put writes data as the next version of name.
func (s *VersionedStore) Put(ctx context.Context, name string, data []byte) error {
	cur, err := s.Version(ctx, name)
	if err != nil {
		return err
	}
	return s.putVersion(ctx, name, data, cur+1)
}

// PutIfVersion writes data as version expect+1, failing with
// ErrConcurrentModification if the newest version is not expect, including
// when another writer commits between the check and the commit.
func (s *VersionedStore) PutIfVersion(ctx context.Context, name string, data []byte, expect uint64) error {
	cur, err := s.Version(ctx, name)
	if err != nil {
		return err
	}
	if cur != expect {
		return fmt.Errorf("%w: %s is at version %d, expected %d", ErrConcurrentModification, name, cur, expect)
	}
	return s.putVersion(ctx, name, data, expect+1)
}

// putVersion uploads data and commits it as exactly version next. The
// conditional commit fails if next is already taken.
func (s *VersionedStore) putVersion(ctx context.Context, name string, data []byte, next uint64) error {
	obj := objectName(name, next)

	if err := s.objects.Put(ctx, obj, data); err != nil {
		return err
	}

	if err := s.commit(ctx, name, commit{version: next, object: obj}); err != nil {
		if errors.Is(err, ErrConcurrentModification) {
			// Nothing references obj.
			_ = s.objects.Delete(ctx, obj)
		}
		return err
	}
	return nil
}

// Delete commits a tombstone for name. Version objects are kept.
func (s *VersionedStore) Delete(ctx context.Context, name string) error {
	c, err := s.head(ctx, name)
	if err != nil {
		return err
	}
	if c == nil || c.deleted {
		return nil
	}
	return s.commit(ctx, name, commit{version: c.version + 1, deleted: true})
}

// List returns the names under prefix whose newest version is not deleted.
func (s *VersionedStore) List(ctx context.Context, prefix string) ([]string, error) {
	objs, err := s.objects.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(objs))
	for _, obj := range objs {
		if name, _, ok := splitObjectName(obj); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	names = slices.Compact(names)

	live := names[:0]
	for _, name := range names {
		c, err := s.head(ctx, name)
		if err != nil {
			return nil, err
		}
		if c != nil && !c.deleted {
			live = append(live, name)
		}
	}
	return live, nil
}

func (s *VersionedStore) head(ctx context.Context, name string) (*commit, error) {
	commits, err := s.query(ctx, name, 1)
	if err != nil || len(commits) == 0 {
		return nil, err
	}
	return &commits[0], nil
}

// query returns commits newest first. limit 0 returns all of them.
func (s *VersionedStore) query(ctx context.Context, name string, limit int32) ([]commit, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("#b = :b"),
		ExpressionAttributeNames: map[string]string{
			"#b": "blob",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":b": &types.AttributeValueMemberS{Value: s.partition(name)},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	var commits []commit
	for {
		resp, err := s.ddb.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("s3: query commit log: %w", err)
		}
		for _, item := range resp.Items {
			c, err := decodeCommit(item)
			if err != nil {
				return nil, err
			}
			commits = append(commits, c)
		}
		if limit > 0 || len(resp.LastEvaluatedKey) == 0 {
			return commits, nil
		}
		input.ExclusiveStartKey = resp.LastEvaluatedKey
	}
}

func (s *VersionedStore) commit(ctx context.Context, name string, c commit) error {
	item := map[string]types.AttributeValue{
		"blob":    &types.AttributeValueMemberS{Value: s.partition(name)},
		"version": &types.AttributeValueMemberN{Value: strconv.FormatUint(c.version, 10)},
		"deleted": &types.AttributeValueMemberBOOL{Value: c.deleted},
	}
	if c.object != "" {
		item["object"] = &types.AttributeValueMemberS{Value: c.object}
	}

	_, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return fmt.Errorf("%w: %s version %d", ErrConcurrentModification, name, c.version)
		}
		return fmt.Errorf("s3: commit %s version %d: %w", name, c.version, err)
	}
	return nil
}

func decodeCommit(item map[string]types.AttributeValue) (commit, error) {
	v, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return commit{}, errors.New("s3: commit log item without version")
	}
	version, err := strconv.ParseUint(v.Value, 10, 64)
	if err != nil {
		return commit{}, fmt.Errorf("s3: commit log version %q: %w", v.Value, err)
	}

	c := commit{version: version}
	if d, ok := item["deleted"].(*types.AttributeValueMemberBOOL); ok {
		c.deleted = d.Value
	}
	if o, ok := item["object"].(*types.AttributeValueMemberS); ok {
		c.object = o.Value
	}
	if !c.deleted && c.object == "" {
		return commit{}, fmt.Errorf("s3: commit log version %d has no object", version)
	}
	return c, nil
}
