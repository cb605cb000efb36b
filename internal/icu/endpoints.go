package icu

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// asObject narrows a decoded payload to an object.
func asObject(payload any) (map[string]any, error) {
	object, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape: %T", payload)
	}
	return object, nil
}

// asList narrows a decoded payload to a list of objects, tolerating
// non-object entries by skipping them.
func asList(payload any) ([]map[string]any, error) {
	entries, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape: %T", payload)
	}
	objects := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		if object, ok := entry.(map[string]any); ok {
			objects = append(objects, object)
		}
	}
	return objects, nil
}

// GetActivities lists an athlete's activities between two dates, newest
// first. A non-positive limit means no limit.
func (c *Client) GetActivities(ctx context.Context, athleteID, oldest, newest string, limit int) ([]map[string]any, error) {
	params := url.Values{}
	if oldest != "" {
		params.Set("oldest", oldest)
	}
	if newest != "" {
		params.Set("newest", newest)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	payload, err := c.get(ctx, "/athlete/"+athleteID+"/activities", params)
	if err != nil {
		return nil, err
	}
	return asList(payload)
}

// GetActivity fetches one activity by its ID.
func (c *Client) GetActivity(ctx context.Context, activityID string) (map[string]any, error) {
	payload, err := c.get(ctx, "/activity/"+activityID, nil)
	if err != nil {
		return nil, err
	}
	return asObject(payload)
}

// GetActivityIntervals fetches the interval analysis for one activity.
func (c *Client) GetActivityIntervals(ctx context.Context, activityID string) (map[string]any, error) {
	payload, err := c.get(ctx, "/activity/"+activityID+"/intervals", nil)
	if err != nil {
		return nil, err
	}
	return asObject(payload)
}

// GetEvents lists an athlete's calendar events between two dates.
func (c *Client) GetEvents(ctx context.Context, athleteID, oldest, newest string) ([]map[string]any, error) {
	params := url.Values{}
	if oldest != "" {
		params.Set("oldest", oldest)
	}
	if newest != "" {
		params.Set("newest", newest)
	}

	payload, err := c.get(ctx, "/athlete/"+athleteID+"/events", params)
	if err != nil {
		return nil, err
	}
	return asList(payload)
}

// GetEventByID fetches one calendar event.
func (c *Client) GetEventByID(ctx context.Context, athleteID, eventID string) (map[string]any, error) {
	payload, err := c.get(ctx, "/athlete/"+athleteID+"/events/"+eventID, nil)
	if err != nil {
		return nil, err
	}
	return asObject(payload)
}

// GetWellness fetches an athlete's wellness entries between two dates.
func (c *Client) GetWellness(ctx context.Context, athleteID, oldest, newest string) (any, error) {
	params := url.Values{}
	if oldest != "" {
		params.Set("oldest", oldest)
	}
	if newest != "" {
		params.Set("newest", newest)
	}
	return c.get(ctx, "/athlete/"+athleteID+"/wellness", params)
}

// CreateEvent adds a calendar event (planned workout, race or note).
func (c *Client) CreateEvent(ctx context.Context, athleteID string, event map[string]any) (any, error) {
	return c.send(ctx, "POST", "/athlete/"+athleteID+"/events", event)
}

// UpdateEvent updates an existing calendar event.
func (c *Client) UpdateEvent(ctx context.Context, athleteID, eventID string, event map[string]any) (any, error) {
	return c.send(ctx, "PUT", "/athlete/"+athleteID+"/events/"+eventID, event)
}
