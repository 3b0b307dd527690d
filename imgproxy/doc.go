// Package imgproxy builds and signs processing URLs for an imgproxy
// compatible image service.
//
// The package never talks to the service. It only produces URLs of the
// form
//
//	<host>/<signature|plain>/<segment>/.../<base64url source>
//
// # Configuration
//
// A Client is created from a Config, either written as a literal or loaded
// from YAML:
//
//	host: https://img.example.com
//	key: 943b421c9eb07c830af81030552c86009268de4e532ba2ee2eab8247c6da0881
//	salt: 520f986b998545b4785e0defbc4f3c1203f22de2374a3d53cb7a7fe9fea309c5
//	source_set_sizes: [320, 640, 1280]
//
// When Key and Salt are both empty the URLs are unsigned and carry the
// "plain" marker instead of a signature.
//
//	cfg, err := imgproxy.LoadConfigFile("imgproxy.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := imgproxy.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Building URLs
//
// Builder collects processing options through chained calls:
//
//	url := client.Builder().
//	    Resize(imgproxy.Resize{Type: imgproxy.ResizeFill, Width: 300, Height: 200}).
//	    Gravity(imgproxy.GravitySmart, 0, 0).
//	    Padding(imgproxy.UniformPadding(10)).
//	    Background(imgproxy.HexColor("ffffff")).
//	    Format("webp").
//	    Generate("s3://bucket/photo.jpg")
//
// Client.Encode is the underlying pure function and takes a Settings value
// directly.
//
// # Segment order
//
// Segments are always emitted in the same order regardless of the order of
// the builder calls, so equal settings produce equal URLs and signatures:
//
//	w h el rs ra dpr g c pd ex t ar rot bg ba bl sh pix sm scp q mb f cb exp fn
//
// Zero values are treated as absent and produce no segment.
//
// # Source sets
//
// Client.SourceSet and Builder.SourceSet render a srcset attribute value
// with one URL per width:
//
//	srcset, err := client.SourceSet("s3://bucket/photo.jpg", imgproxy.Settings{Quality: 80}, 320, 640)
package imgproxy
