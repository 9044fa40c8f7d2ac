package cache_test

import (
	"fmt"

	"github.com/matzehuels/versionlens/pkg/cache"
)

func ExampleSplitKey() {
	// Scoped npm packages keep their own "@" after the registry separator
	key := cache.Key("npm", "@types/node")
	fmt.Println(key)

	registry, pkg, err := cache.SplitKey(key)
	fmt.Println(registry, pkg, err)

	_, _, err = cache.SplitKey("no-registry")
	fmt.Println(err != nil)
	// Output:
	// npm@@types/node
	// npm @types/node <nil>
	// true
}
