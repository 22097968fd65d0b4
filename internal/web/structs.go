package web

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func parseListQuery(ctx *fiber.Ctx) (listQuery, error) {
	var err error
	limit, limitErr := queryInt(ctx, "limit")
	err = errors.Join(err, limitErr)
	offset, offsetErr := queryInt(ctx, "offset")
	err = errors.Join(err, offsetErr)
	if err != nil {
		return listQuery{}, err
	}
	q := listQuery{
		Limit:  limit,
		Offset: offset,
		Grade:  strings.TrimSpace(ctx.Query("grade")),
		Team:   strings.TrimSpace(ctx.Query("team")),
		Name:   strings.TrimSpace(ctx.Query("name")),
	}
	if err := q.Validate(); err != nil {
		return listQuery{}, err
	}
	return q, nil
}

func queryInt(ctx *fiber.Ctx, key string) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}
