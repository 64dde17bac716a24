package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/codec"
	"github.com/hupe1980/bitvec/store"
	"github.com/hupe1980/bitvec/testutil"
)

var codecs = []codec.Codec{
	{Compression: codec.CompressionNone},
	{Compression: codec.CompressionLZ4},
	{Compression: codec.CompressionZSTD},
}

func BenchmarkCodec_Marshal(b *testing.B) {
	for _, density := range []float64{0.01, 0.5} {
		v := randomVector(testutil.NewRNG(1), bitsLarge, density)
		for _, c := range codecs {
			b.Run(fmt.Sprintf("%s/density=%.2f", c.Name(), density), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(bitsLarge / 8))

				var size int
				for i := 0; i < b.N; i++ {
					data, err := c.Marshal(v)
					if err != nil {
						b.Fatal(err)
					}
					size = len(data)
				}
				b.ReportMetric(float64(size)/float64(bitsLarge/8), "ratio")
			})
		}
	}
}

func BenchmarkCodec_Unmarshal(b *testing.B) {
	v := randomVector(testutil.NewRNG(1), bitsLarge, 0.01)
	for _, c := range codecs {
		data, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(bitsLarge / 8))

			for i := 0; i < b.N; i++ {
				if _, err := c.Unmarshal(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRoaring(b *testing.B) {
	v := randomVector(testutil.NewRNG(1), bitsLarge, 0.01)

	b.Run("to", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := v.ToRoaring(); err != nil {
				b.Fatal(err)
			}
		}
	})

	rb, err := v.ToRoaring()
	if err != nil {
		b.Fatal(err)
	}
	b.Run("from", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := bitvec.FromRoaring(rb, bitsLarge); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkRepository_SaveLoad(b *testing.B) {
	backends := map[string]func(b *testing.B) blobstore.BlobStore{
		"memory": func(*testing.B) blobstore.BlobStore { return blobstore.NewMemoryStore() },
		"local":  func(b *testing.B) blobstore.BlobStore { return blobstore.NewLocalStore(b.TempDir()) },
	}

	v := randomVector(testutil.NewRNG(1), bitsMedium, 0.1)
	for name, newStore := range backends {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			ctx := context.Background()
			repo := store.New(newStore(b))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := repo.Save(ctx, "v", v); err != nil {
					b.Fatal(err)
				}
				if _, err := repo.Load(ctx, "v"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
