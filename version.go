package termgen

// Version is the release of the termgen module and binary.
const Version = "0.3.0"
