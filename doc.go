// Package unsplash is a typed client for the Unsplash REST API.
//
// Every call performs exactly one HTTP exchange and returns a Result that holds
// either the decoded payload or an *errors.Error describing why the call failed:
//
//	client, err := unsplash.New(unsplash.Config{AccessKey: os.Getenv("UNSPLASH_ACCESS_KEY")})
//	if err != nil {
//		return err
//	}
//	res := client.Photos.Get(ctx, "pFqrYbhIAXs")
//	if !res.OK() {
//		return res.Error
//	}
//	fmt.Println(res.Data.URLs.Regular)
//
// Calls never panic and never return a Go error directly; transport, status and
// decode failures are all carried by Result.Error.
package unsplash
