package validate

import (
	"regexp"
	"sync"
)

// patternCache memoizes compiled regexes across calls, since the same
// schema's pattern/patternProperties keys are recompiled on every
// validate() run otherwise. Invalid patterns are cached too (as a nil
// *regexp.Regexp) so a bad pattern only costs one failed compile.
var patternCache sync.Map // map[string]*regexp.Regexp

func compilePattern(pattern string) *regexp.Regexp {
	if cached, ok := patternCache.Load(pattern); ok {
		re, _ := cached.(*regexp.Regexp)
		return re
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		patternCache.Store(pattern, (*regexp.Regexp)(nil))
		return nil
	}
	patternCache.Store(pattern, re)
	return re
}
