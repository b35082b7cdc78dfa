package elementwalker

import (
	"context"
	"errors"
	"net/url"

	"github.com/temoto/robotstxt"
)

var ErrRobotsDisallowed = errors.New("robots.txt does not allow access")

func getRobotsURL(baseURL string) (string, error) {
	u, errParse := url.Parse(baseURL)
	if errParse != nil {
		return "", errParse
	}
	robotsURL := url.URL{
		Scheme: u.Scheme,
		User:   u.User,
		Host:   u.Host,
		Path:   "/robots.txt",
	}
	return robotsURL.String(), nil
}

func getRobotsData(ctx context.Context, fetcher Fetcher, baseURL string) (data *robotstxt.RobotsData, err error) {
	robotsURL, errRobotsURL := getRobotsURL(baseURL)
	if errRobotsURL != nil {
		return nil, errRobotsURL
	}
	body, _, errFetch := fetcher.Fetch(ctx, robotsURL)
	if errFetch != nil {
		return nil, errFetch
	}
	return robotstxt.FromBytes(body)
}

// robotsAllow is true for every path when there is no group
func robotsAllow(group *robotstxt.Group, targetURL string) bool {
	if group == nil {
		return true
	}
	u, errParse := url.Parse(targetURL)
	if errParse != nil {
		return true
	}
	return group.Test(u.Path)
}
