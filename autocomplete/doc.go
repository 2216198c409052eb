// Package autocomplete answers "most frequent completion" queries over a
// fixed collection of lowercase sentences.
//
// Build inserts every sentence into a prefix tree whose nodes hold 26 letter
// slots plus a terminator slot, counting repeated sentences, and then caches
// on every node the highest frequency found in its subtree. Complete walks
// the prefix and descends greedily along that cached maximum:
//
//	Build([]string{"ab", "ab", "ac"}).Complete("a") == "ab"  // 2 > 1
//	Build([]string{"ab", "ac"}).Complete("a")       == "ab"  // tie: smallest
//	Build([]string{"a", "ab"}).Complete("a")        == "a"   // prefix wins ties
//
// Among the sentences with the highest frequency the lexicographically
// smallest one is returned. The terminator is checked before the letters, so
// a stored prefix beats its longer, equally frequent extensions.
//
// A built Trie is read-only: Complete, Frequency and Len may be called from
// any number of goroutines.
//
// Complexity:
//
//	Build    O(total characters)
//	Complete O(len(prefix) + len(result))
package autocomplete
