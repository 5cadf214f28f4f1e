// Package app is the composition root for the telewish application.
//
// It loads configuration and preferences, builds the API client and the
// session store, and hands everything to the UI. A missing session
// credential is not an error here: the UI presents it on a terminal
// error view instead.
package app
