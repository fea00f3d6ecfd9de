package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/internal/app"
	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/storage"
	"github.com/d60-Lab/yatube/pkg/database"
	"github.com/d60-Lab/yatube/pkg/pagination"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
}

func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	check(model.AutoMigrate(db))
	pages, closeCache := cache.New(cfg.Redis)
	defer func() { _ = closeCache() }()
	svc := app.NewServices(db, pages, storage.NewLocalStorage(cfg.Media.Root, cfg.Media.URLPrefix))
	ctx := context.Background()

	AUTHORS := envInt("AUTHORS", 50)  // authors with posts
	READERS := envInt("READERS", 500) // each follows every author
	POSTS := envInt("POSTS", 20)      // posts per author
	CONC := envInt("CONC", 8)         // concurrent follow writers
	READS := envInt("READS", 200)     // feed/index reads

	// seed users with a unique run prefix so repeated runs don't collide
	run := uuid.NewString()[:8]
	authors := make([]*model.User, AUTHORS)
	for i := range authors {
		authors[i] = &model.User{Username: fmt.Sprintf("a%s_%d", run, i), Password: "p"}
	}
	readers := make([]*model.User, READERS)
	for i := range readers {
		readers[i] = &model.User{Username: fmt.Sprintf("r%s_%d", run, i), Password: "p"}
	}
	check(db.CreateInBatches(authors, 1000).Error)
	check(db.CreateInBatches(readers, 1000).Error)

	posts := make([]*model.Post, 0, AUTHORS*POSTS)
	for _, a := range authors {
		for j := 0; j < POSTS; j++ {
			posts = append(posts, &model.Post{Text: fmt.Sprintf("%s post %d", a.Username, j), AuthorID: a.ID})
		}
	}
	check(db.Omit("Author", "Group").CreateInBatches(posts, 1000).Error)

	// follow writes: every reader follows every author, then repeats once to measure the idempotent path
	type edge struct {
		reader *model.User
		author string
	}
	feed := make(chan edge, READERS*AUTHORS)
	for _, r := range readers {
		for _, a := range authors {
			feed <- edge{r, a.Username}
		}
	}
	close(feed)
	var mu sync.Mutex
	follows := make([]time.Duration, 0, READERS*AUTHORS)
	var wg sync.WaitGroup
	t0 := time.Now()
	for w := 0; w < CONC; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := range feed {
				st := time.Now()
				_ = svc.Relationships.Follow(ctx, e.reader, e.author)
				d := time.Since(st)
				mu.Lock()
				follows = append(follows, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	followDur := time.Since(t0)

	repeats := make([]time.Duration, 0, READERS)
	for _, r := range readers {
		st := time.Now()
		_ = svc.Relationships.Follow(ctx, r, authors[0].Username)
		repeats = append(repeats, time.Since(st))
	}

	// follow feed reads
	feedReads := make([]time.Duration, 0, READS)
	for i := 0; i < READS; i++ {
		r := readers[i%len(readers)]
		page := strconv.Itoa(i%5 + 1)
		st := time.Now()
		_, _ = svc.Posts.Feed(ctx, r.ID, page)
		feedReads = append(feedReads, time.Since(st))
	}

	// index reads: cold after invalidation, then warm
	_ = pages.Invalidate(ctx)
	numPages := (AUTHORS*POSTS + pagination.PerPage - 1) / pagination.PerPage
	cold := make([]time.Duration, 0, numPages)
	for p := 1; p <= numPages && p <= READS; p++ {
		st := time.Now()
		_, _ = svc.Posts.Index(ctx, strconv.Itoa(p))
		cold = append(cold, time.Since(st))
	}
	warm := make([]time.Duration, 0, READS)
	for i := 0; i < READS; i++ {
		st := time.Now()
		_, _ = svc.Posts.Index(ctx, strconv.Itoa(i%len(cold)+1))
		warm = append(warm, time.Since(st))
	}

	n := len(follows)
	fmt.Printf("AUTHORS=%d READERS=%d POSTS=%d CONC=%d READS=%d\n", AUTHORS, READERS, POSTS, CONC, READS)
	fmt.Printf("Follow writes: total=%v per op=%v p50=%v p95=%v p99=%v\n",
		followDur, followDur/time.Duration(max(n, 1)), pct(follows, 0.50), pct(follows, 0.95), pct(follows, 0.99))
	fmt.Printf("Repeat follow (no-op): p50=%v p95=%v\n", pct(repeats, 0.50), pct(repeats, 0.95))
	fmt.Printf("Follow feed read (page of %d): p50=%v p95=%v p99=%v\n",
		pagination.PerPage, pct(feedReads, 0.50), pct(feedReads, 0.95), pct(feedReads, 0.99))
	fmt.Printf("Index read cold: samples=%d p50=%v p95=%v\n", len(cold), pct(cold, 0.50), pct(cold, 0.95))
	fmt.Printf("Index read warm: samples=%d p50=%v p95=%v\n", len(warm), pct(warm, 0.50), pct(warm, 0.95))
	if rc, ok := pages.(*cache.RedisPageCache); ok {
		hits, misses := rc.Counters()
		fmt.Printf("Page cache: hits=%d misses=%d\n", hits, misses)
	} else {
		fmt.Println("Page cache: disabled (redis.addr empty)")
	}
}
