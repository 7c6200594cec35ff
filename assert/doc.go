/*
Package assert provides runtime precondition checks and error aggregation.

Two patterns are supported:
  - Assertions that panic when a caller violates a precondition, like passing a blank property name.
  - Collecting many possible errors into one, so validation can report everything that's wrong at once.

Assertions may be compiled out with the 'noassert' build tag.
For temporary changes, the Disable and Enable functions are also provided, but these should likely not be used in production code.
*/
package assert
