// Package cache provides a bounded, thread-safe LRU cache.
//
// It backs the compiled-pattern cache of the regex validator: patterns come
// from schemas, so the set is open-ended and must not grow without bound.
//
//	patterns := cache.NewLRU[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrCreate(src, func() (*regexp.Regexp, error) {
//		return regexp.Compile(src)
//	})
package cache
