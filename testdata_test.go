// FILE: lixenwraith/apacheconf/testdata_test.go
package apacheconf

// canonicalConfig is already in rendered form, so it must survive a round trip unchanged.
const canonicalConfig = `# Global settings
ServerRoot /etc/httpd
Listen 80
Listen 443 https
ServerSignature

<VirtualHost '*:80'>
    ServerName www.example.com
    DocumentRoot /var/www/html
    ErrorDocument 404 'Not found here'
    <Directory /var/www/html>
        Options Indexes FollowSymLinks
        AllowOverride None
    </Directory>
</VirtualHost>

<VirtualHost '*:443'>
    ServerName secure.example.com
    SSLEngine on
</VirtualHost>
<IfModule>
</IfModule>`

func names(items Items) []string {
	out := make([]string, 0, len(items))
	for _, n := range items {
		out = append(out, n.Name())
	}
	return out
}

func firstArgs(items Items) []string {
	out := make([]string, 0, len(items))
	for _, n := range items {
		args := n.Args()
		if len(args) == 0 {
			out = append(out, "")
			continue
		}
		out = append(out, args[0])
	}
	return out
}
