package internal

// Version is the hanzirecall release version.
const Version = "0.3.1"
