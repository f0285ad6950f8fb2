package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-skill/internal/models"
)

// AnswerResponse carries the spoken reply for a weather question
type AnswerResponse struct {
	Answer string `json:"answer" example:"Es sind gerade 12 Grad."`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: question"`
}

// GetAnswer godoc
// @Summary Answer a spoken weather question
// @Description Resolves a German time phrase against the forecast of the requested city and returns one natural-language sentence
// @Tags Weather
// @Accept json
// @Produce json
// @Param question query string true "Question type" Enums(forecast, temperature, has-rain, has-sun, has-snow) example(temperature)
// @Param city query string false "City name; the configured home location is used when absent" example(Hamburg)
// @Param when query string false "Free-text German time phrase" example(morgen nachmittag)
// @Success 200 {object} AnswerResponse "Successful response"
// @Success 204 "No answer could be generated for this request"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Router /answer [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/answer?question=forecast&city=Hamburg&when=morgen%20nachmittag"
func (r *routes) handleAnswer(c *fiber.Ctx) error {
	rawQuestion := c.Query("question")
	if rawQuestion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: question",
		})
	}

	question, ok := models.ParseQuestion(rawQuestion)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Unknown question type: " + rawQuestion,
		})
	}

	city := c.Query("city")
	phrase := strings.ToLower(c.Query("when"))

	reply, err := r.service.Answer(c.Context(), question, city, phrase)
	if err != nil {
		// The skill stays silent on failure: log the condition, reply with
		// no content, never speak an error message to the user.
		r.l.Warning("no answer generated", map[string]any{
			"question": rawQuestion,
			"city":     city,
			"when":     phrase,
			"err":      err.Error(),
		})

		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.JSON(AnswerResponse{Answer: reply})
}
