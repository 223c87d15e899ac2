// frame sequence string parser and formatter
//
// a frame sequence string is a compact, comma-separated description of
// integer frame numbers, as used by rendering and animation pipelines:
//
//   individual frames:      1,2,3,5,8,13  ->  [1 2 3 5 8 13]
//   a contiguous range:     10-15         ->  [10 11 12 13 14 15]
//   with a step size:       10-20@2       ->  [10 12 14 16 18 20]
//   a reversed range:       42-33@3       ->  [42 39 36 33]
//   with binary splitting:  10-20@b       ->  [10 20 15 12 17 11 13 16 18 14 19]
//
// notation rules:
//   1. the step size is always written as a positive integer; a range runs
//      backwards when its first frame is greater than its last
//   2. the last frame of a range is omitted when the step size does not
//      land on it exactly: 80-70@4 -> [80 76 72]
//   3. binary splitting (@b) emits both endpoints first, then midpoints of
//      ever smaller intervals in breadth-first order, so every prefix of
//      the output spreads roughly evenly across the whole range
//   4. whitespace is tolerated around commas only; frames, ranges and steps
//      must be written without interior whitespace
//   5. duplicate frames are preserved: clauses expand independently and
//      their outputs concatenate in writing order
//
// BNF:
//  <sequence>  :: <clause> ( "," <clause> )* ;
//
//  <clause>    :: <frame> | <range> ;
//
//  <range>     :: <frame> "-" <frame> ( "@" <step> )? ;
//  <step>      :: <positive> | "b" ;
//
//  <frame>     :: "-"? <positive> ;
//  <positive>  :: <digit>+ ;
//  <digit>     :: "0" | ... | "9" ;

package frameseq
