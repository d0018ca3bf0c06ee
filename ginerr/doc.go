// Package ginerr connects the translate registry to Gin request handling.
// Gin stays the caller's framework; this package only supplies the glue that
// passes raised conditions to the registry and transmits its responses.
//
//	r := gin.New()
//	r.Use(ginerr.RequestID(), ginerr.Recovery(reg), ginerr.ErrorHandler(reg))
//
//	r.GET("/posts/:id", func(c *gin.Context) {
//	    post, err := store.Find(c.Param("id"))
//	    if err != nil {
//	        c.Error(err) // drained by ErrorHandler
//	        return
//	    }
//	    c.JSON(http.StatusOK, post)
//	})
package ginerr
