package alchemy

// Version is the release version of the alchemy module and the alchemist CLI.
const Version = "0.1.0"
