// Package substrfree implements the substring-free precondition shared by
// every SSP solver: no element of the input list may be a substring of a
// distinct element.
package substrfree
