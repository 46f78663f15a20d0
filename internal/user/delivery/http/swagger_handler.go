package http

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password=string} true "Registration data"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 429 {object} response.ErrorBody
// @Router /api/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 429 {object} response.ErrorBody
// @Router /api/login [post]
func (h *UserHandler) LoginDoc() {}

// Me godoc
// @Summary Current user
// @Description Verifies the bearer token and returns the user it belongs to
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /api/me [get]
func (h *UserHandler) MeDoc() {}
