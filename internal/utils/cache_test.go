package utils

import (
	"sync"
	"testing"
	"time"
)

func TestGetCacheConcurrentInit(t *testing.T) {
	const goroutines = 16

	instances := make([]*GlobalCache, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = GetCache()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if instances[i] != instances[0] {
			t.Fatal("GetCache returned different instances")
		}
	}
}

func TestCacheTTL(t *testing.T) {
	c := GetCache()

	c.Set("uji:ttl", "nilai", 50*time.Millisecond)
	if got := c.Get("uji:ttl"); got != "nilai" {
		t.Fatalf("Get = %v, want %q", got, "nilai")
	}

	time.Sleep(60 * time.Millisecond)
	if got := c.Get("uji:ttl"); got != nil {
		t.Errorf("Get after expiry = %v, want nil", got)
	}

	c.Set("uji:hapus", "nilai", time.Minute)
	c.Delete("uji:hapus")
	if got := c.Get("uji:hapus"); got != nil {
		t.Errorf("Get after delete = %v, want nil", got)
	}
}
