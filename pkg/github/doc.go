// Package github fetches metadata for a single GitHub repository.
//
// # Overview
//
// The package wraps one endpoint of the GitHub REST API
// (https://api.github.com/repos/{owner}/{repo}) and decodes the response
// into [RepoInfo]. There is deliberately nothing else: no pagination, no
// rate-limit handling, no caching, and no retries. The package never logs;
// every failure is reported through the returned error.
//
// # Usage
//
//	info, err := github.GetRepoInfo(ctx, "golang", "go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Stars:", info.Stars)
//	fmt.Println("Default branch:", info.DefaultBranch)
//
// For call sites that want to keep working while the request is in
// flight, [GetRepoInfoAsync] delivers the same result on a channel:
//
//	results := github.GetRepoInfoAsync(ctx, "golang", "go")
//	// ... other work ...
//	res := <-results
//	if res.Err != nil {
//	    log.Fatal(res.Err)
//	}
//
// Both variants share the request and decoding logic.
//
// # Authentication
//
// A personal access token is optional. Without one, GitHub limits clients
// to 60 requests/hour; with one, 5000 requests/hour. Create an
// authenticated client with [NewClient]:
//
//	client := github.NewClient(os.Getenv("GITHUB_TOKEN"))
//	info, err := client.GetRepoInfo(ctx, "golang", "go")
//
// # Errors
//
// Failures fall into three kinds, each matchable with [errors.Is]:
//
//   - [ErrRequest]: the request never produced a response (connection,
//     DNS, TLS, cancellation).
//   - [ErrStatus]: the API answered with a non-2xx status. 404 responses
//     additionally match [ErrNotFound], and [errors.As] with a
//     [*StatusError] exposes the status code.
//   - [ErrDecode]: the response body did not match the expected schema.
//
// # Timeouts
//
// The package sets no timeout of its own. Use the context:
//
//	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
//	defer cancel()
//	info, err := github.GetRepoInfo(ctx, "golang", "go")
package github
