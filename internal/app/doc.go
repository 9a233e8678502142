// Package app wires configuration, logging, the photos repository, the
// view model and the UI together. It is the composition root.
//
// Run follows a fixed startup order:
//
//  1. config.Load reads ~/.config/amphibians/config.toml (defaults if missing)
//  2. logging.Setup opens the log file; the terminal belongs to the UI
//  3. container.New builds the HTTP client and repository; a malformed
//     base URL is fatal here
//  4. state.NewPhotosViewModel starts the first fetch
//  5. StartTransitionLogger records every published state at debug level
//  6. ui.Run takes over the terminal, or in plain mode the first settled
//     state is printed and Run returns
//
// Fetch failures are never fatal. They surface as the Error state and are
// logged with their kind (transport or protocol). In plain mode an Error
// state makes Run return ErrFetchFailed so the process can exit non-zero.
package app
