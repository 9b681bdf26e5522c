package domain

// Email identifies a participant record. It is the store key and is compared verbatim;
// no case folding or trimming is applied.
type Email string
